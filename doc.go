// Package beanfolio values an investment portfolio kept in a beancount
// ledger, month by month.
//
// The core functionalities include:
//   - Ledger decoding: reading the JSON export of a beancount ledger
//     (DecodeLedger) and classifying its postings by account path
//     (ParseAccount, Classify).
//   - Transaction extraction: turning ledger transactions into stock trades,
//     dividend payments and commission charges, indexed by symbol
//     (NewJournal). Malformed transactions are dropped and reported, never
//     fatal.
//   - Market data: indexing daily prices by symbol and month (NewPriceIndex)
//     to get the open and close of any month.
//   - Valuation: an immutable engine computing, for a monthly cutoff, the
//     value of a position, its accumulated dividends and the commissions
//     paid (NewEngine), the monthly series of a portfolio and the returns
//     between two cutoffs.
//   - Acquisition: converting beancount text and downloading prices from
//     remote services (FetchLedger, FetchPrices, Load) through a daily disk
//     cache.
//
// This package serves as the foundational logic for the `bfo` command-line
// tool.
package beanfolio
