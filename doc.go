// Package secureownable is a client SDK for SecureOwnable contracts: an
// ownership model with three separated roles (owner, broadcaster, recovery)
// where every critical change runs through an on-chain state machine rather
// than a single-key call.
//
// Critical operations follow one of two workflows. Two-phase operations
// (ownership transfer, broadcaster update) are requested by one role and
// approved by another after a timelock elapses, with a cool-down before they
// can be cancelled. Single-phase operations (recovery update, timelock
// update) are signed off-chain by the owner and submitted by the broadcaster
// as a meta-transaction, so the owner key never has to hold gas.
//
// The Manager type orchestrates both workflows over a contract gateway
// (package sdk, with the EVM implementation in sdk/evm) and a
// pending-transaction store that hands signed payloads from the signing role
// to the broadcaster.
package secureownable
