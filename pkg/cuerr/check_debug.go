//go:build cudadebug

package cuerr

const debugSync = true
