// Package mojibake holds the fixed repair table and applies it to text.
//
// The table maps sequences produced by decoding UTF-8 bytes as
// Windows-1252 back to the characters they started as (for example "Ã©"
// becomes "é"). Pairs are applied strictly in table order and each pair
// sees the output of the pairs before it, so the order is part of the
// behavior:
//
//   - "Ãƒ" comes first. It undoes the outer layer of a letter that was
//     corrupted twice and exposes a sequence a later pair repairs.
//   - Symbols and punctuation corrupted twice ("Ã‚Â©", "Ã¢â‚¬â€œ") lose
//     their outer layer next.
//   - The "Â" symbol pairs and the "â€" punctuation pairs follow.
//   - The "Ã" letter pairs come last.
//
// With this order a second pass over repaired text finds nothing to do.
// A genuine "Â" written directly before a Latin-1 symbol is the exception:
// "Â©" is itself a key.
//
// Nothing here is derived at runtime. The check package verifies the
// table against the Windows-1252 codec.
package mojibake
