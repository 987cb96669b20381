package chat

import "strings"

// Canned replies used while the backend is unreachable.
const (
	DegradedNotice = "⚠ Comms link degraded. Backup systems online with limited responses."
	GreetingReply  = "Hello, Commander. Primary uplink is down, but backup comms are standing by."
	StatusReply    = "All stations report nominal. Only the chat uplink is offline."
	LaunchReply    = "Check the countdown panel for the next launch window and pad details."
	CrewReply      = "Crew manifest: Cmdr. A. Reyes, Pilot J. Okafor, Flight Eng. M. Lindqvist, Mission Spec. K. Tanaka."
	IdentityReply  = "I am the station's mission control assistant, currently running on backup systems."
)

// Rule answers text when Match returns true.
type Rule struct {
	Name  string
	Match func(lower string) bool
	Reply string
}

func containsAny(words ...string) func(string) bool {
	return func(lower string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}
}

// DefaultRules is evaluated top to bottom; the first match wins.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "greeting", Match: containsAny("hello", "hi"), Reply: GreetingReply},
		{Name: "status", Match: containsAny("status"), Reply: StatusReply},
		{Name: "launch", Match: containsAny("launch"), Reply: LaunchReply},
		{Name: "crew", Match: containsAny("crew"), Reply: CrewReply},
		{Name: "identity", Match: containsAny("who are you"), Reply: IdentityReply},
	}
}

// Fallback answers text from rules, or returns DegradedNotice when nothing
// matches. Matching is case-insensitive.
func Fallback(rules []Rule, text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.Match != nil && r.Match(lower) {
			return r.Reply
		}
	}
	return DegradedNotice
}
