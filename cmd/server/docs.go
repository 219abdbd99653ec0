// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

// Package main provides the What2Eat HTTP server
//
// @title What2Eat API
// @version 1.0
// @description Menu recommendation service: answer a short questionnaire and get one dish plus a few diverse alternatives.
// @description
// @description ## Flows
// @description
// @description - **Stateless**: POST the full selections to `/recommend`.
// @description - **Session**: create a session, walk the steps with `/select`, `/next`, `/prev`, `/skip`, then `/recommend` and `/retry`.
// @description
// @description ## Weather
// @description
// @description Weather comes from OpenWeather when `OPENWEATHER_API_KEY` is set and is otherwise a fixed dummy report.
// @description Weather endpoints never fail; upstream problems fall back to the dummy report.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Exceeding it returns `429` with code `RATE_LIMIT_EXCEEDED`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-05-01T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/what2eat/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks
//
// @tag.name Catalog
// @tag.description Questionnaire steps and the menu catalog
//
// @tag.name Recommend
// @tag.description Stateless recommendation and reason generation
//
// @tag.name Weather
// @tag.description Current weather with context tag and flavor message
//
// @tag.name Sessions
// @tag.description Server-side questionnaire sessions
package main
