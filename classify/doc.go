// Package classify turns intensity images into binary foreground masks.
//
// Classifier is the seam where a trained pixel classifier plugs into the
// graph dataset. Threshold and Otsu are simple global-threshold baselines;
// Func adapts any function. Graph quality on the classifier path is bounded
// by the quality of the mask produced here.
package classify
