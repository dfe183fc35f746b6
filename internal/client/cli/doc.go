// Package cli is the interactive shell of the storedash client.
//
// It wires the auth session store, the session gate, and the dashboard data
// service into a small REPL: anonymous users can log in or register (with
// inline field validation, exactly as the web forms behave), authenticated
// users get the protected dashboard views. Every protected command consults
// the session gate first; on a denial the shell performs the redirect-to-login
// effect by dropping the user back to the anonymous prompt.
package cli
