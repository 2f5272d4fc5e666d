// Package enum defines the closed value sets used across the app.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type mode -lower
type mode int

const (
	modeAuto  mode = iota // enum:alias=
	modeLight
	modeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type method -lower
type method int

const (
	methodCommand method = iota
	methodEvent
)
