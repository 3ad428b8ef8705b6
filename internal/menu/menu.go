package menu

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/okamoto/staff-records/internal/console"
	"github.com/okamoto/staff-records/internal/models"
)

var (
	// ErrInvalidChoice is returned for a top-level selection outside 1-3
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrInvalidTypistChoice is returned for a typist sub-selection outside 1-2
	ErrInvalidTypistChoice = errors.New("invalid typist choice")
)

// Top-level selections
const (
	ChoiceTeacher = 1
	ChoiceTypist  = 2
	ChoiceOfficer = 3
)

// Typist sub-selections
const (
	TypistRegular = 1
	TypistCasual  = 2
)

// Menu runs one selection and record lifecycle over a console
type Menu struct {
	console *console.Console
	logger  *zap.Logger
}

// NewMenu creates a new menu
func NewMenu(c *console.Console, logger *zap.Logger) *Menu {
	return &Menu{
		console: c,
		logger:  logger,
	}
}

// Run shows the menu, reads a selection and, when it is valid, creates the
// matching record, reads it and displays it. There is no retry: an invalid
// selection prints a message and returns a wrapped ErrInvalidChoice or
// ErrInvalidTypistChoice with a nil record.
func (m *Menu) Run() (models.Record, error) {
	kind, err := m.selectKind()
	if err != nil {
		m.logger.Info("invalid selection", zap.Error(err))
		return nil, err
	}

	record := models.New(kind)
	record.Input(m.console)
	m.logger.Debug("record captured",
		zap.Stringer("kind", kind),
		zap.Int("id", record.Base().ID),
		zap.Bool("input_failed", m.console.Failed()))

	record.Display(m.console)

	return record, nil
}

func (m *Menu) selectKind() (models.Kind, error) {
	m.console.Println()
	m.console.Println("===== Staff Management System =====")
	m.console.Println("1. Teacher")
	m.console.Println("2. Typist (Regular / Casual)")
	m.console.Println("3. Officer")
	m.console.Prompt("Enter your choice: ")
	choice := m.console.ReadInt()
	m.logger.Debug("menu selection", zap.Int("choice", choice))

	switch choice {
	case ChoiceTeacher:
		return models.KindTeacher, nil
	case ChoiceOfficer:
		return models.KindOfficer, nil
	case ChoiceTypist:
		return m.selectTypist()
	default:
		m.console.Println("Invalid choice!")
		return 0, fmt.Errorf("selection %d: %w", choice, ErrInvalidChoice)
	}
}

func (m *Menu) selectTypist() (models.Kind, error) {
	m.console.Println()
	m.console.Println("1. Regular Typist")
	m.console.Println("2. Casual Typist")
	m.console.Prompt("Enter type: ")
	sub := m.console.ReadInt()
	m.logger.Debug("typist selection", zap.Int("choice", sub))

	switch sub {
	case TypistRegular:
		return models.KindRegular, nil
	case TypistCasual:
		return models.KindCasual, nil
	default:
		m.console.Println("Invalid Typist Choice!")
		return 0, fmt.Errorf("typist selection %d: %w", sub, ErrInvalidTypistChoice)
	}
}
