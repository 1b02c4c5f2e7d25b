package models

import "time"

// Scope is the branch and date-range constraint under which
// transactions are fetched. The zero value means all branches, all
// dates.
type Scope struct {
	BranchID string
	From     time.Time
	Until    time.Time
}

// WithBranch returns a copy of the scope constrained to the given
// branch.
func (s Scope) WithBranch(branchID string) Scope {
	s.BranchID = branchID
	return s
}

// ViewerKind distinguishes a viewer that sees all branches from one
// restricted to a single branch.
type ViewerKind string

const (
	ViewerGlobal ViewerKind = "global"
	ViewerBranch ViewerKind = "branch"
)

// Viewer is the explicit role context the matcher runs under. A branch
// viewer only sees transactions that carry both a vendor hint and a
// branch reference.
type Viewer struct {
	Kind     ViewerKind
	BranchID string
}

// GlobalViewer returns a viewer that sees every branch.
func GlobalViewer() Viewer {
	return Viewer{Kind: ViewerGlobal}
}

// BranchViewer returns a viewer restricted to a single branch.
func BranchViewer(branchID string) Viewer {
	return Viewer{Kind: ViewerBranch, BranchID: branchID}
}
