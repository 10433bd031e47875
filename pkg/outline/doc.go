// Package outline generates canonical plan-view outlines for structural
// wall cross-sections. The supported section shapes form a small closed
// set; each produces one outer loop plus optional hole loops in a fixed
// local frame, translated by the wall's global offset.
package outline
