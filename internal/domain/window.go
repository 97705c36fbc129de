package domain

import "time"

const monthLayout = "2006-01"

// DateWindow é um intervalo de datas inclusivo no formato YYYY-MM-DD.
type DateWindow struct {
	StartDate string
	EndDate   string
}

// ResolveWindow resolve o intervalo de datas de uma execução.
//
// Precedência:
//  1. datas explícitas são usadas como recebidas, sem validação de ordem;
//  2. um token de mês "YYYY-MM" válido vira o primeiro e o último dia daquele
//     mês (último dia = primeiro dia do mês seguinte menos um dia);
//  3. caso contrário, o mês corrente em UTC.
//
// Função pura: todo acesso a relógio vem do parâmetro now.
func ResolveWindow(explicitStart, explicitEnd, monthToken string, now time.Time) DateWindow {
	if explicitStart != "" && explicitEnd != "" {
		return DateWindow{StartDate: explicitStart, EndDate: explicitEnd}
	}

	var first time.Time
	if t, err := time.Parse(monthLayout, monthToken); monthToken != "" && err == nil {
		first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		utcNow := now.UTC()
		first = time.Date(utcNow.Year(), utcNow.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)

	return DateWindow{
		StartDate: first.Format(time.DateOnly),
		EndDate:   last.Format(time.DateOnly),
	}
}

// YesterdayWindow retorna a janela de um único dia: ontem em UTC. É a janela
// padrão quando nenhuma data é informada e também a usada pelo agendador.
func YesterdayWindow(now time.Time) DateWindow {
	yesterday := now.UTC().AddDate(0, 0, -1).Format(time.DateOnly)
	return DateWindow{StartDate: yesterday, EndDate: yesterday}
}
