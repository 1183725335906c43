package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/sbilibin2017/gw-evault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("overrides replace defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockRateStore(ctrl)
		svc := services.NewRateService(store)

		store.EXPECT().GetAll(ctx).Return(map[string]models.Rate{
			"BTC":  {Symbol: "BTC", Rate: 2, Period: models.PeriodDaily},
			"DOGE": {Symbol: "DOGE", Rate: 0.5, Period: models.PeriodMonthly},
		}, nil)

		rates := svc.List(ctx)

		require.Len(t, rates, len(models.DefaultRates())+1)
		for i := 1; i < len(rates); i++ {
			assert.Less(t, rates[i-1].Symbol, rates[i].Symbol)
		}
		bySymbol := map[string]models.Rate{}
		for _, r := range rates {
			bySymbol[r.Symbol] = r
		}
		assert.Equal(t, models.Rate{Symbol: "BTC", Rate: 2, Period: models.PeriodDaily}, bySymbol["BTC"])
		assert.Equal(t, models.DefaultRates()["USDT"], bySymbol["USDT"])
	})

	t.Run("store failure serves defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockRateStore(ctrl)
		svc := services.NewRateService(store)

		store.EXPECT().GetAll(ctx).Return(nil, errors.New("redis down"))

		rates := svc.List(ctx)
		require.Len(t, rates, len(models.DefaultRates()))
		for _, r := range rates {
			assert.Equal(t, models.DefaultRates()[r.Symbol], r)
		}
	})
}

func TestRateService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("stores upper-cased symbol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockRateStore(ctrl)
		svc := services.NewRateService(store)

		want := models.Rate{Symbol: "ETH", Rate: 0.9, Period: models.PeriodDaily}
		store.EXPECT().Set(ctx, want).Return(nil)

		got, err := svc.Update(ctx, admin, " eth ", 0.9, models.PeriodDaily)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty period keeps current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockRateStore(ctrl)
		svc := services.NewRateService(store)

		store.EXPECT().GetAll(ctx).Return(nil, nil)
		store.EXPECT().Set(ctx, models.Rate{Symbol: "USDT", Rate: 4, Period: models.PeriodDaily}).Return(nil)

		got, err := svc.Update(ctx, admin, "USDT", 4, "")
		require.NoError(t, err)
		assert.Equal(t, models.PeriodDaily, got.Period)
	})

	t.Run("new symbol defaults to monthly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockRateStore(ctrl)
		svc := services.NewRateService(store)

		store.EXPECT().GetAll(ctx).Return(nil, nil)
		store.EXPECT().Set(ctx, models.Rate{Symbol: "ADA", Rate: 1, Period: models.PeriodMonthly}).Return(nil)

		_, err := svc.Update(ctx, admin, "ada", 1, "")
		require.NoError(t, err)
	})

	t.Run("rejections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := services.NewRateService(services.NewMockRateStore(ctrl))

		_, err := svc.Update(ctx, user, "BTC", 1, models.PeriodDaily)
		assert.ErrorIs(t, err, services.ErrForbidden)

		_, err = svc.Update(ctx, admin, " ", 1, models.PeriodDaily)
		assert.ErrorIs(t, err, services.ErrValidation)

		for _, rate := range []float64{-0.1, math.NaN(), math.Inf(1)} {
			_, err = svc.Update(ctx, admin, "BTC", rate, models.PeriodDaily)
			assert.ErrorIs(t, err, services.ErrValidation)
		}

		_, err = svc.Update(ctx, admin, "BTC", 1, "Weekly")
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockRateStore(ctrl)
		svc := services.NewRateService(store)

		store.EXPECT().Set(ctx, gomock.Any()).Return(errors.New("redis down"))

		_, err := svc.Update(ctx, admin, "BTC", 1, models.PeriodMonthly)
		assert.EqualError(t, err, "redis down")
	})
}
