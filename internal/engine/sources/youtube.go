package sources

// YouTube caption acquisition is split across files by responsibility:
//   youtube_innertube.go — Innertube API types, constants, and low-level HTTP primitives
//   youtube_scrape.go    — strategy 1: watch-page ytInitialPlayerResponse scrape
//   youtube_ios.go       — strategy 2: iOS-client Innertube /player, json3 caption events
//   youtube_android.go   — strategy 3: raw ANDROID /player + srv3 timed-text XML
//   acquire.go           — strategy interface, fallback runner, failure classification
