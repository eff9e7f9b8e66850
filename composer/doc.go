// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package composer builds the lunch poll message.

# Menu

A Menu is the poll title, the options to vote for and the canned answers for
"what's for lunch" questions. It comes from YAML or the built-in default:

	title: "*Where should we eat lunch?*"
	options:
	  - id: texas-longhorn
	    title: ":hamburger: Texas Longhorn"
	    description: Some nice burgers here!
	suggestions:
	  - I think pizza!

# Poll Layout

BuildPoll returns slack-go blocks:

	section  title
	divider
	section  option 1 + "Vote" button   (block_id = option id)
	context  "No votes"
	section  option 2 + "Vote" button
	context  "No votes"
	...

The vote coordinator relies on each option's context block immediately
following its section.
*/
package composer
