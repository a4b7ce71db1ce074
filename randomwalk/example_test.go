package randomwalk_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metagain/randomwalk"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEnv_Step
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A fully degenerate environment (sa = sb = 0): the walk never moves and
//	the observations carry no noise, so every step reads exactly 0. Handy
//	as the "silent" baseline when validating a predictor's steady state.
//
// Complexity: O(1) per step.
func ExampleEnv_Step() {
	env, err := randomwalk.New(0, 0, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 3; i++ {
		y, stepErr := env.Step()
		if stepErr != nil {
			fmt.Println("error:", stepErr)

			return
		}
		fmt.Printf("step %d: y=%.1f\n", i+1, y)
	}
	// Output:
	// step 1: y=0.0
	// step 2: y=0.0
	// step 3: y=0.0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEnv_Step_exhausted
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The step budget is a hard bound: once the pre-drawn noise is consumed,
//	Step fails with ErrExhausted and the only recovery is a new Env.
func ExampleEnv_Step_exhausted() {
	env, err := randomwalk.New(1, 1, 2, randomwalk.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 2; i++ {
		if _, err = env.Step(); err != nil {
			fmt.Println("unexpected:", err)

			return
		}
	}
	_, err = env.Step()
	fmt.Println("third call exhausted:", errors.Is(err, randomwalk.ErrExhausted))
	fmt.Println("steps consumed:", env.Steps())
	// Output:
	// third call exhausted: true
	// steps consumed: 2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEnv_ChangeVariance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Mid-run observation-noise regime change on a frozen walk (sa = 0):
//	switching sb to 0 silences all future observations without rebuilding
//	the environment — the classic non-stationarity probe.
func ExampleEnv_ChangeVariance() {
	env, err := randomwalk.New(0, 5.0, 4, randomwalk.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if _, err = env.Step(); err != nil { // one noisy observation, value seed-dependent
		fmt.Println("error:", err)

		return
	}
	if err = env.ChangeVariance(0); err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 3; i++ {
		y, stepErr := env.Step()
		if stepErr != nil {
			fmt.Println("error:", stepErr)

			return
		}
		fmt.Printf("post-switch y=%.1f\n", y)
	}
	// Output:
	// post-switch y=0.0
	// post-switch y=0.0
	// post-switch y=0.0
}
