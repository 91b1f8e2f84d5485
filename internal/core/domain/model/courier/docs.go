// Package courier contains the Courier aggregate and its transport Class
// value object.
//
// A courier is eligible for an order when all three of its constraints hold:
// the order weight fits the class limit, the order's region is served, and
// the working hours overlap the order's delivery hours. The predicates live
// here; combining them and applying the result to orders is the job of the
// domain services package.
package courier
