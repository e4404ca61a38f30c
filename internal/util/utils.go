package util

import "schedsim/internal/responses"

func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnAroundTime, averageResponseTime float64) {
	var waitingTimeSum float64
	var turnAroundTimeSum float64
	var responseTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
		responseTimeSum += float64(proccess.ResponseTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	return
}
