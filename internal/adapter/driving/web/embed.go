package web

import "embed"

// StaticFS holds the embedded static assets (site stylesheet and the navbar
// script).
//
//go:embed static/*
var StaticFS embed.FS
