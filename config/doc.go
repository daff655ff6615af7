// Package config loads declarative mapping files: YAML documents that pin
// per-type JSON mapping configuration without code changes.
//
// A mapping file has the following structure:
//
//	version: "1"
//	types:
//	  - type: store.Order
//	    referencing: true
//	    fields:
//	      - member: TotalCents
//	        name: total
//	      - member: DisplayName        # name defaults to the member name
//	    exclude:
//	      - Items
//
// Application order is referencing, then excludes, then fields, so excludes
// win regardless of their position in the file — the same order-independent
// exclusion the builder itself guarantees.
package config
