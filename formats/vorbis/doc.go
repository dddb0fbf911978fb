// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// Channel count and rate come from the identification header. Samples are
// already float32 and are passed through as decoded.
package vorbis
