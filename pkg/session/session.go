// Package session owns application state for one CLI invocation: it opens
// the key-value store, hydrates the aggregate, runs the structural migration
// and hands runners a load/replace pair. The store handle is constructed
// here once and passed down, never held in a package-level singleton.
package session

import (
	"go.uber.org/zap"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/assistant"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/logging"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/store"
)

type Session struct {
	cfg   store.Config
	kv    store.KV
	state *store.State[appdata.AppData]
	log   *zap.SugaredLogger
}

// Open loads config, opens the store and hydrates the aggregate. The
// structural migration runs before any caller sees the data; if it fired,
// the migrated aggregate is persisted immediately.
func Open() (*Session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	log := logging.New()
	state := store.NewState(kv, appdata.DataKey, appdata.Empty(), log)
	state.Hydrate()

	data := state.Get()
	if appdata.Migrate(&data) {
		state.Set(data)
	}

	return &Session{cfg: cfg, kv: kv, state: state, log: log}, nil
}

// Data returns the current aggregate.
func (s *Session) Data() appdata.AppData {
	return s.state.Get()
}

// Save replaces the aggregate wholesale and writes it through. Callers that
// change several collections do it in one Save, never two partial ones, so
// no torn intermediate state can be persisted.
func (s *Session) Save(data appdata.AppData) {
	s.state.Set(data)
}

// Log returns the session logger.
func (s *Session) Log() *zap.SugaredLogger {
	return s.log
}

// Assistant returns a client for the configured remote service.
func (s *Session) Assistant() *assistant.Client {
	return assistant.New(s.cfg.APIBaseURL(), s.log)
}

// RememberTab records the last used feature, best-effort.
func (s *Session) RememberTab(tab string) {
	if err := s.kv.Set(appdata.TabKey, []byte(tab)); err != nil {
		s.log.Debugw("remembering tab failed", "error", err)
	}
}

// LastTab returns the last used feature, or "tasks" when none is recorded.
func (s *Session) LastTab() string {
	if !s.kv.Has(appdata.TabKey) {
		return "tasks"
	}
	raw, err := s.kv.Get(appdata.TabKey)
	if err != nil || len(raw) == 0 {
		return "tasks"
	}
	return string(raw)
}
