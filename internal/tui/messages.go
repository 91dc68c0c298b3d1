package tui

import "github.com/jask/rollcall/internal/database/repository"

type historyMsg []repository.Event

type statusMsg string

type errMsg struct{ error }
