// Package verify runs randomized property checks against the bignum engine
// and compares it with reference oracles. Checks run concurrently; progress
// and results reach the user through the ProgressReporter and ResultPresenter
// interfaces, so the runner never depends on a concrete UI.
package verify
