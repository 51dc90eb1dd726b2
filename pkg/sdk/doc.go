// Package classdex provides an embedded Go client for the classdex
// fitness-class search engine.
//
// The client wires the search pipeline directly onto a storage driver,
// so no HTTP server is needed:
//
//	client, _ := classdex.New(ctx, classdex.WithMemorySeed())
//	defer client.Close()
//
//	items, total, _ := client.Search(ctx, classdex.Query{
//	    Text:  "yoga",
//	    Limit: 10,
//	    Filters: &classdex.Filters{
//	        Categories: []string{"yoga"},
//	        MinRating:  4.0,
//	    },
//	})
//
// Redis (with RedisJSON) and SQLite catalogs are supported via
// WithRedis and WithSQLite. Curated presets are available through
// Presets and can be applied by ID in a Query.
package classdex
