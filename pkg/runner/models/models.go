package models

import (
	"context"
	"fmt"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

type Status struct {
	Session *session.Session
}

func (s *Status) Do(ctx context.Context) error {
	status, err := s.Session.Assistant().ModelStatus(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.ModelStatus(status)
	return nil
}

type List struct {
	Session *session.Session
}

func (l *List) Do(ctx context.Context) error {
	available, err := l.Session.Assistant().AvailableModels(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("models")
	pp.Models(available)
	return nil
}

type Current struct {
	Session *session.Session
}

func (c *Current) Do(ctx context.Context) error {
	current, err := c.Session.Assistant().CurrentModel(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.CurrentModel(current)
	return nil
}

type Switch struct {
	Name string

	Session *session.Session
}

func (s *Switch) Do(ctx context.Context) error {
	if s.Name == "" {
		return fmt.Errorf("model name required")
	}
	resp, err := s.Session.Assistant().SwitchModel(ctx, s.Name)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Status(resp.Message)
	return nil
}
