// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package session holds the questionnaire state of one visitor.

A State is owned by the caller and changed only through its transition
methods (Toggle, Set, Next, Prev, Skip, Reset, ApplyWeather, RecordResult,
Retry). States are persisted through a Store; two backends exist:

  - MemoryStore: process-local map, lost on restart (default)
  - BadgerStore: BadgerDB with per-entry TTL, survives restarts

Use NewFactory to build the backend named in config.SessionConfig, and
Manager to serialize read-modify-write cycles on the same session id.

Weather is loaded at most once per session. When it loads and the visitor
has not picked a context yet, the weather's context tag is injected as the
context selection. Reset keeps the weather.

Expired sessions are purged periodically by the session janitor service
in internal/supervisor/services.
*/
package session
