package web

import "embed"

// Static embeds the dashboard assets.
//
//go:embed static/*
var Static embed.FS
