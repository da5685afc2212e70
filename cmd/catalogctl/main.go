// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogctl runs administrative tasks against the portfolio catalog:
// schema migrations, demo seeding and admin password hashing.
package main

func main() {
	execute()
}
