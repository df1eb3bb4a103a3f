package querycache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/iudanet/shelfsync/internal/models"
)

// Fingerprint возвращает детерминированный отпечаток спецификации
// фильтра: sha256 от канонической сериализации. Канонизация
// сортирует пары поле=значение, поэтому порядок задания полей на
// отпечаток не влияет. Коллизии исключаются канонической формой,
// а не защитой во время выполнения.
func Fingerprint(spec *models.FilterSpec) string {
	sum := sha256.Sum256([]byte(spec.Canonical()))
	return hex.EncodeToString(sum[:])
}
