package utils

import "time"

// ISOTimestampLayout é o formato ISO-8601 em UTC com milissegundos
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp formata o instante em UTC no layout ISO usado nas exportações.
// Deve ser usada em todo o projeto para manter o mesmo formato de data.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

// Now retorna o instante atual em UTC, truncado em milissegundos
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
