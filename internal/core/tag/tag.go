// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tag manages the labels attached to catalog items.

A tag always renders: when it has no translation in the requested language
its slug is used as the name. Deleting a tag detaches it from every item.
*/
package tag

const entity = "tag"
