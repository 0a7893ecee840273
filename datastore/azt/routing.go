/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"github.com/suparena/tablestore/config"
)

// operationKind classifies a call for table routing purposes.
type operationKind int

const (
	opWrite operationKind = iota // insert, delete, batch
	opPointRead
	opQuery
)

// target names the table a call resolves to.
type target int

const (
	targetNone target = iota // no table; the call is a no-op
	targetProd
	targetDev
)

// resolveTarget is the single routing policy for dev/prod table selection.
//
// Filtered queries always run against the prod table. Writes and deletes go
// to the dev table whenever one is configured, even in the prod stage; with
// no dev table they go to prod in the prod stage and become no-ops in the
// dev stage. Point reads follow the plain effective-table rule: dev only
// when the stage is dev and a dev table exists.
//
// The write asymmetry (dev wins even in prod stage, while queries stay on
// prod) is long-standing observed behavior that downstream tooling depends
// on; do not change it here without a product decision.
func resolveTarget(stage config.Stage, hasDev bool, op operationKind) target {
	switch op {
	case opQuery:
		return targetProd
	case opWrite:
		if hasDev {
			return targetDev
		}
		if stage == config.StageDev {
			return targetNone
		}
		return targetProd
	default: // opPointRead
		if stage == config.StageDev && hasDev {
			return targetDev
		}
		return targetProd
	}
}
