package model

// Package model defines the data structures shared by the banner host: banner
// payloads, symbolic display durations, visibility and scroll states, and
// placement directions. Values are immutable once handed to the host.
