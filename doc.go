// Package stockfolio computes the performance of a portfolio of stocks.
//
// A [Stock] is a named series of daily prices. A [Portfolio] holds assets and
// reports, over a range of dates:
//   - the profit: its value on the end date minus its value on the start date.
//   - the annualized return: the compounded return scaled to a 365 days year,
//     in percent with 2 decimals.
//
// A stock without a price on a date is worth 0 that day, prices are never
// interpolated.
//
// Daily prices are stored in a market file, a human-readable and git-friendly
// JSONL file, see [DecodeMarket] and [EncodeMarket].
package stockfolio
