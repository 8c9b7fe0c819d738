// Package menu runs the interactive loop: present the actions, dispatch the
// chosen one, and come back until the operator exits.
package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/prompt"
	"github.com/thenoetrevino/roster/internal/render"
)

const actionField = "action"

type handlerFunc func(ctx context.Context) error

// Menu owns the store connection for the duration of the session
type Menu struct {
	store    database.DataStore
	prompter prompt.Prompter
	out      *render.Renderer

	handlers map[Action]handlerFunc
}

// New wires the menu to its collaborators
func New(store database.DataStore, prompter prompt.Prompter, out *render.Renderer) *Menu {
	m := &Menu{
		store:    store,
		prompter: prompter,
		out:      out,
	}
	m.handlers = map[Action]handlerFunc{
		ActionViewDepartments:    m.viewDepartments,
		ActionViewRoles:          m.viewRoles,
		ActionViewEmployees:      m.viewEmployees,
		ActionAddDepartment:      m.addDepartment,
		ActionAddRole:            m.addRole,
		ActionAddEmployee:        m.addEmployee,
		ActionUpdateEmployeeRole: m.updateEmployeeRole,
	}
	return m
}

// Run presents the menu until Exit is chosen, the operator aborts a prompt,
// or ctx is cancelled; each of these closes the store and returns nil.
// Any store error ends the loop and is returned as is, with the store left open.
func (m *Menu) Run(ctx context.Context) error {
	for {
		action, err := m.awaitAction(ctx)
		if err != nil {
			if m.isExit(ctx, err) {
				return m.exit()
			}
			return err
		}

		if action == ActionExit {
			return m.exit()
		}

		if err := m.dispatch(ctx, action); err != nil {
			if m.isExit(ctx, err) {
				return m.exit()
			}
			return err
		}
	}
}

// awaitAction asks for the next action
func (m *Menu) awaitAction(ctx context.Context) (Action, error) {
	answers, err := m.prompter.Ask(ctx,
		prompt.Select(actionField, "What would you like to do?", menuChoices()))
	if err != nil {
		return 0, err
	}
	return Action(answers.Choice(actionField).ID()), nil
}

// dispatch runs the handler for action. Unknown actions do nothing.
func (m *Menu) dispatch(ctx context.Context, action Action) error {
	handler, ok := m.handlers[action]
	if !ok {
		slog.Warn("ignoring unknown menu action", "action", int(action))
		return nil
	}

	// Failures are logged once by whoever ends the session
	slog.Info("dispatching action", "action", action.String())
	return handler(ctx)
}

func (m *Menu) isExit(ctx context.Context, err error) bool {
	return errors.Is(err, prompt.ErrAborted) || ctx.Err() != nil
}

// exit releases the store connection
func (m *Menu) exit() error {
	slog.Info("exiting, closing store")
	if err := m.store.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}
