// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

// Package main is menucli, an offline front end to the What2Eat engine.
//
// It loads the same configuration and catalog as the server and runs the
// recommendation pipeline in-process:
//
//	menucli steps
//	menucli catalog --cuisine 한식
//	menucli recommend --meal-time 점심 --taste 매콤 --temp 3 --seed 7
//	menucli weather --lat 37.56 --lon 126.97
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
