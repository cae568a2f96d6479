package simulator_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/alovak/iso8583-mock/simulator"
	"github.com/alovak/iso8583-mock/simulator/models"
	"github.com/stretchr/testify/require"
)

func TestTransactionStore(t *testing.T) {
	store, err := simulator.NewTransactionStore()
	require.NoError(t, err)

	exists, err := store.Exists("100001")
	require.NoError(t, err)
	require.False(t, exists)

	transaction := models.Transaction{
		PAN:          "4111111111111111",
		Amount:       "000000010000",
		STAN:         "100001",
		Timestamp:    "0825143000",
		ResponseCode: "00",
	}
	require.NoError(t, store.Put("100001", transaction))

	exists, err = store.Exists("100001")
	require.NoError(t, err)
	require.True(t, exists)

	got, err := store.Get("100001")
	require.NoError(t, err)
	require.Equal(t, transaction, *got)

	_, err = store.Get("999999")
	require.ErrorIs(t, err, simulator.ErrNotFound)
}

func TestTransactionStore_PutOverwrites(t *testing.T) {
	store, err := simulator.NewTransactionStore()
	require.NoError(t, err)

	first := models.Transaction{PAN: "4111111111111111", Amount: "100", STAN: "100001", ResponseCode: "00"}
	require.NoError(t, store.Put("100001", first))

	second := models.Transaction{PAN: "4222222222222222", Amount: "200", STAN: "100001", ResponseCode: "00"}
	require.NoError(t, store.Put("100001", second))

	got, err := store.Get("100001")
	require.NoError(t, err)
	require.Equal(t, second, *got)
}

func TestTransactionStore_ConcurrentAccess(t *testing.T) {
	store, err := simulator.NewTransactionStore()
	require.NoError(t, err)

	wg := &sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		stan := fmt.Sprintf("%06d", i)

		wg.Add(2)
		go func() {
			defer wg.Done()
			err := store.Put(stan, models.Transaction{PAN: "4111111111111111", STAN: stan, ResponseCode: "00"})
			require.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := store.Exists(stan)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		exists, err := store.Exists(fmt.Sprintf("%06d", i))
		require.NoError(t, err)
		require.True(t, exists)
	}
}
