// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package item implements listing, lookup and transactional mutation of catalog
items (portfolio projects).

# Listing

Listings run in three phases so that the tag fan-out join never distorts
pagination:
 1. Count distinct matching items.
 2. Select one page of ids ordered by (published_at DESC NULLS LAST, id DESC).
 3. Hydrate exactly those ids through the full join, aggregate, and restore
    the phase 2 order.

# Mutations

Create, update and delete each run in a single transaction. Tag associations
are replaced wholesale on update while translations are merged per language.
*/
package item

// entity labels logs and metrics.
const entity = "item"
