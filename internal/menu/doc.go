// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package menu owns the menu catalog and the controlled tag vocabulary.

The catalog is a read-only list of Item records compiled into the binary from
catalog.json. An alternate file can be supplied at startup through Load; it is
validated the same way:

  - ids are unique and non-empty
  - mealTime, cuisine and dishType carry at least one tag
  - spicyLevel is between 0 and 3
  - every tag is drawn from its facet's vocabulary

The package also defines the ordered StepConfig list that drives the
question flow, and the share card shown with a result.

Nothing in this package is mutated after initialisation, so all exported
values are safe for concurrent use.
*/
package menu
