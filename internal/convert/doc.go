// Package convert ties validation, transliteration and pronunciation
// simplification into a single pipeline and fans it out over batches.
// Every input item yields exactly one Result; one item's failure never
// stops the rest of the batch.
package convert
