// Package model defines the identifier and result types shared by the
// octonav layers.
//
// # Identity Types
//
//   - NodeID: dense navigation graph node identifier (uint32)
//
// # Result Types
//
//   - Status: terminal state of one path search
package model
