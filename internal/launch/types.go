package launch

import (
	"strings"
	"time"
)

// upcomingResponse mirrors GET /2.2.0/launch/upcoming/.
type upcomingResponse struct {
	Count   int         `json:"count"`
	Results []apiLaunch `json:"results"`
}

type apiLaunch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NET      string `json:"net"`
	Provider struct {
		Name string `json:"name"`
	} `json:"launch_service_provider"`
	Pad struct {
		Name     string `json:"name"`
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
	} `json:"pad"`
}

// Launch is one scheduled launch as reported by the provider.
type Launch struct {
	ID       string
	Name     string
	Provider string
	Location string
	// NET is the zero time when the provider's timestamp did not parse.
	NET time.Time
}

func (a apiLaunch) toLaunch() Launch {
	net, err := time.Parse(time.RFC3339, strings.TrimSpace(a.NET))
	if err != nil {
		net = time.Time{}
	}
	return Launch{
		ID:       a.ID,
		Name:     a.Name,
		Provider: a.Provider.Name,
		Location: a.Pad.Location.Name,
		NET:      net,
	}
}

// Mode tells whether a Target came from the provider or the fallback.
type Mode int

const (
	ModeLive Mode = iota
	ModeSimulated
)

func (m Mode) String() string {
	if m == ModeSimulated {
		return "SIMULATION"
	}
	return "LIVE"
}

// Target is the instant the countdown runs against plus its display text.
type Target struct {
	Provider string
	Mission  string
	Pad      string
	At       time.Time
	Mode     Mode
}

// Simulated placeholder text.
const (
	SimulatedProvider = "SIMULATION MODE"
	SimulatedMission  = "ORBITAL INTERCEPT TEST"
	SimulatedPad      = "Vandenberg SFB, CA"

	SimulatedLead = 48 * time.Hour
)

// SimulatedTarget returns the fallback target for now.
func SimulatedTarget(now time.Time) Target {
	return Target{
		Provider: SimulatedProvider,
		Mission:  SimulatedMission,
		Pad:      SimulatedPad,
		At:       now.Add(SimulatedLead),
		Mode:     ModeSimulated,
	}
}

// LiveTarget converts a provider launch into display form.
func LiveTarget(l Launch) Target {
	return Target{
		Provider: strings.ToUpper(l.Provider),
		Mission:  MissionName(l.Name),
		Pad:      l.Location,
		At:       l.NET,
		Mode:     ModeLive,
	}
}

// MissionName keeps the text before the first '|', untrimmed. Names with no
// '|', or with nothing before it, are returned unchanged.
func MissionName(name string) string {
	before, _, _ := strings.Cut(name, "|")
	if before == "" {
		return name
	}
	return before
}
