//go:build amd64 && !purego && avx512

package memset

import _ "github.com/cwbudde/algo-memset/internal/fill/arch/amd64/avx512"
