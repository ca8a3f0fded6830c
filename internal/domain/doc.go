// Package domain contains the core business entities of the application:
// registered users and the tasks they own. Entities enforce their own
// invariants through constructors and validation methods, independent of
// any specific infrastructure or delivery mechanism.
package domain
