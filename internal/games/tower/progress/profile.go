package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ProfileKey is the record key the profile is stored under.
const ProfileKey = "stackTower_v2"

// ErrThemeLocked is returned when selecting a theme that is not unlocked.
var ErrThemeLocked = errors.New("progress: theme is locked")

// Profile is the single persisted record.
type Profile struct {
	Stats          AggregateStats `json:"stats"`
	Theme          string         `json:"theme"`
	UnlockedThemes []string       `json:"unlockedThemes"`
	UnlockedBadges []string       `json:"unlockedBadges"`
}

// DefaultProfile returns a fresh profile using the catalog's first theme.
func DefaultProfile(cat *Catalog) Profile {
	id := cat.DefaultTheme().ID
	return Profile{
		Theme:          id,
		UnlockedThemes: []string{id},
		UnlockedBadges: []string{},
	}
}

// RecordStore is the key-value persistence the profile needs.
type RecordStore interface {
	LoadRecord(key string) ([]byte, bool, error)
	SaveRecord(key string, data []byte) error
}

// DecodeProfile parses a stored record over the defaults. A malformed record
// yields the default profile together with the parse error; callers treat
// the error as a warning.
func DecodeProfile(data []byte, cat *Catalog) (Profile, error) {
	p := DefaultProfile(cat)
	if len(data) == 0 {
		return p, nil
	}

	var stored Profile
	if err := json.Unmarshal(data, &stored); err != nil {
		return p, fmt.Errorf("progress: malformed profile: %w", err)
	}

	p.Stats = p.Stats.merge(stored.Stats)
	if stored.Theme != "" {
		p.Theme = stored.Theme
	}
	p.UnlockedThemes = union(p.UnlockedThemes, stored.UnlockedThemes)
	p.UnlockedBadges = union(p.UnlockedBadges, stored.UnlockedBadges)
	p.normalize(cat)
	return p, nil
}

// normalize drops unknown theme ids, re-runs theme unlocks and makes sure the
// selected theme is usable.
func (p *Profile) normalize(cat *Catalog) {
	p.UnlockedThemes = slices.DeleteFunc(p.UnlockedThemes, func(id string) bool {
		return !cat.HasTheme(id)
	})
	def := cat.DefaultTheme().ID
	if !slices.Contains(p.UnlockedThemes, def) {
		p.UnlockedThemes = append([]string{def}, p.UnlockedThemes...)
	}
	cat.UnlockThemes(p)
	if !slices.Contains(p.UnlockedThemes, p.Theme) {
		p.Theme = def
	}
}

// Encode serializes the profile record.
func (p Profile) Encode() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot encode profile: %w", err)
	}
	return data, nil
}

// HasTheme reports whether a theme is unlocked.
func (p Profile) HasTheme(id string) bool {
	return slices.Contains(p.UnlockedThemes, id)
}

// HasBadge reports whether a badge is unlocked.
func (p Profile) HasBadge(id string) bool {
	return slices.Contains(p.UnlockedBadges, id)
}

// SelectTheme switches to an unlocked theme.
func (p *Profile) SelectTheme(id string) error {
	if !p.HasTheme(id) {
		return fmt.Errorf("select %q: %w", id, ErrThemeLocked)
	}
	p.Theme = id
	return nil
}

// LoadProfile reads the profile from the store. A missing record yields the
// default profile; a malformed one yields the default profile and an error.
func LoadProfile(store RecordStore, cat *Catalog) (Profile, error) {
	data, ok, err := store.LoadRecord(ProfileKey)
	if err != nil {
		return DefaultProfile(cat), err
	}
	if !ok {
		p := DefaultProfile(cat)
		p.normalize(cat)
		return p, nil
	}
	return DecodeProfile(data, cat)
}

// SaveProfile writes the profile to the store.
func SaveProfile(store RecordStore, p Profile) error {
	data, err := p.Encode()
	if err != nil {
		return err
	}
	return store.SaveRecord(ProfileKey, data)
}

// union appends the items of b missing from a, keeping order.
func union(a, b []string) []string {
	out := slices.Clone(a)
	for _, id := range b {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
