package services

var ForEachCombination = forEachCombination
