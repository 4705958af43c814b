// Package config holds the keyed configuration values the layout engine reads.
//
// Keys are colon-separated and namespaced by plugin, for example
// "plugin:columns:max_columns". Keys are registered with a default through
// [Store.AddValue]; files are TOML, where nested tables map to key segments:
//
//	[plugin.columns]
//	max_columns = 4
//	spawn_direction = "left"
//
// A [Store] is safe for concurrent use. The engine reads values on every
// operation, so a reload performed by [Watch] takes effect on the next call.
package config
