// Package environment carries the deployment environment (development,
// staging, production) through configuration and request contexts.
//
// Parse accepts the APP_ENV value and Middleware stores it on every
// request, where IsDevelopment and IsProduction read it back.
package environment
