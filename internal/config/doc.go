// Package config loads the run settings for the schedule pipeline.
//
// Settings come from a JSON file (config.json by default) layered with
// environment variables, including any loaded from a .env file. The merged
// result is validated once at startup and passed to the pipeline stages as
// an immutable value; no stage reads configuration ambiently.
package config
