package app

import "github.com/riordanpawley/visioncraft/internal/types"

// welcomeMsg raises the greeting shortly after start
type welcomeMsg struct{}

// authResultMsg carries the outcome of the authentication action
type authResultMsg struct {
	mode types.FormMode
	err  error
}

// settleMsg ends the busy state of a mode after a submission
type settleMsg struct {
	mode types.FormMode
}

// blurResetMsg recenters the avatar eyes unless an input regained focus
type blurResetMsg struct {
	mode types.FormMode
}
