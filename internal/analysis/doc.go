// Package analysis explores a resolved string beyond the single solution.
//
//   - [Sweep]: vary one primary across a range and solve for another,
//     holding the remaining two fixed
//   - [Pluck]: simulate the string as a finite-difference wave and measure
//     its fundamental with [DominantFrequency]
//
// # Simulated pitch
//
// Pluck measures the pitch of the resolved string and sets it beside the
// ideal fundamental c/2L and the value of Mersenne's law as computed by
// the mersenne package:
//
//	res, _ := analysis.Pluck(ctx, ps, integrators.NewVerlet(), analysis.DefaultPluckConfig())
//	fmt.Printf("%.2f Hz simulated, %.2f Hz ideal, %.2f Hz law\n", res.Simulated, res.Predicted, res.Law)
package analysis
