// Package models defines the core domain models for pricewise.
//
// # Stored Models
//
//   - Product: a priced item whose distributable budget is split among roles
//   - Role: one share of that budget (base or custom)
//
// # Derived Models
//
//   - Breakdown: a Product together with every value computed from it
//     (available percent, final price, per-role amounts, remaining percent)
//   - Allocation: one role's row inside a Breakdown
//
// Derived models are never persisted. They are rebuilt from the stored
// Product on every read so that they can't drift from their inputs.
//
// # Design Principles
//
// 1. **Percentages are plain numbers**: 12.5 means 12.5%, not 0.125
// 2. **Insertion order is meaningful**: roles and products keep the order
//    they were added in, and renderers display them that way
// 3. **Avoid circular references**: relationships use ID strings
package models
