// Package css2ggr converts CSS linear-gradient declarations into GIMP
// gradient (.ggr) definitions.
//
// The accepted input is a restricted subset of CSS gradient syntax: a
// linear-gradient with a left-to-right direction and two or more
// 6-digit hex color stops. N stops become N-1 piecewise-linear
// segments partitioning [0, 1] into equal-width intervals.
//
// Basic usage:
//
//	g, err := css2ggr.Convert("linear-gradient(to right, #ff0000, #00ff00)", "Sunrise")
//	if err != nil {
//	    // errors.Is against the css package sentinels to tell kinds apart
//	}
//	fmt.Print(g.String())
//
// or write straight to a gradients folder:
//
//	err := css2ggr.ConvertTo("/path/to/gradients/Sunrise.ggr", input, "Sunrise")
package css2ggr
