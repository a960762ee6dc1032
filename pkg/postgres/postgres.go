package postgres

import (
	"context"
	"fmt"
	"time"

	errorsUtils "github.com/Egor213/LogDesk/pkg/errors"
	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	defaultMaxPoolSize  = 1
	defaultConnAttempts = 10
	defaultConnTimeout  = time.Second
)

type Postgres struct {
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration

	Builder   sq.StatementBuilderType
	Pool      *pgxpool.Pool
	CtxGetter *trmpgx.CtxGetter
}

func New(url string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		maxPoolSize:  defaultMaxPoolSize,
		connAttempts: defaultConnAttempts,
		connTimeout:  defaultConnTimeout,
		CtxGetter:    trmpgx.DefaultCtxGetter,
	}

	for _, opt := range opts {
		opt(pg)
	}

	pg.Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	poolConfig.MaxConns = int32(pg.maxPoolSize)

	for pg.connAttempts > 0 {
		pg.Pool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err == nil {
			if err = pg.Pool.Ping(context.Background()); err == nil {
				break
			}
			pg.Pool.Close()
			pg.Pool = nil
		}

		log.Infof("Postgres is trying to connect, attempts left: %d", pg.connAttempts)
		time.Sleep(pg.connTimeout)
		pg.connAttempts--
	}

	if err != nil {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("connAttempts == 0: %w", err))
	}

	return pg, nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
