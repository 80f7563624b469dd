// Package config loads the almanac CLI configuration.
//
// The file is YAML; every key is optional:
//
//	chain: [seed, soil, fertilizer, water, light, temperature, humidity, location]
//	workers: 8
//	strict: false
//	log:
//	  level: info
//	  development: false
//
// Missing keys take the values from Default. The result is checked with
// validator struct tags before use.
package config
