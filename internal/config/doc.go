// Package config loads missionctl's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/missionctl/config.toml
//  3. If the file doesn't exist, use built-in defaults
//  4. Blank, zero or negative fields fall back to their defaults
//
// # TOML Format
//
//	[launch]
//	api_url = "https://lldev.thespacedevs.com/2.2.0/launch/upcoming/"
//	limit = 5
//	requests_per_hour = 15   # negative disables the limiter
//
//	[news]
//	api_url = "https://api.spaceflightnewsapi.net/v4/articles/"
//	limit = 3
//
//	[chat]
//	backend = "http"         # http | openai | offline
//	endpoint = "http://127.0.0.1:8000/api/chat"
//	timeout_seconds = 10
//	model = "gpt-4o-mini"    # openai backend only
//	api_key = ""             # openai backend; OPENAI_API_KEY also works
//	base_url = ""
//
//	[display]
//	stars = 200
//	seed = 0                 # 0 seeds from the clock
//	fps = 30
//	local_time_format = ""   # Go layout; empty follows LANG/LC_TIME
//
//	[log]
//	file = "~/.local/state/missionctl/missionctl.log"
//	level = "info"
//
// Missing config files are NOT an error. missionctl works out of the box
// against the public launch and news APIs.
package config
