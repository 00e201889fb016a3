// Package config turns order and strategy names into a composed
// strategy.Factory and loads solver settings with viper.
//
// Sources, lowest precedence first:
//
//   - built-in defaults (input order, cycle strategy, no grouping);
//   - an optional config file (yaml, json or toml, by extension);
//   - PGSOLVE_* environment variables, e.g. PGSOLVE_STRATEGY=adaptive;
//   - command-line flags bound through Load.
//
// Recognised keys: order, strategy, grouped, seed, yield_interval,
// max_iterations.
package config
