package ports

import "github.com/bnema/zksh/internal/domain"

type StatRenderer func(stat domain.Stat) string
