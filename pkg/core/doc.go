// Package core ties discovery and processing into the two operations the
// CLI exposes: RenderTemplates performs a full run and PlanTemplates only
// reports what a run would do.
package core
